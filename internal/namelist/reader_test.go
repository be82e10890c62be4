package namelist_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/pencil/internal/namelist"
)

const startNML = ` &INIT_PARS
 CVSID='$Id$',
 IP=14,
 XYZ0=-3.14159274     ,-3.14159274     ,-3.14159274     ,
 LPERI=T,T,F,
 UNIT_LENGTH=1.00000000    ,
 /
 &HYDRO_INIT_PARS
 INITUU='nothing',
 RHO0=1.00000000    ,
 AMPLUU=3*0.00000000    ,
 /
 &DENSITY_INIT_PARS
 RHO0=2.00000000    ,
 CS0=1.00000000    ,
 /
`

var _ = Describe("Result", func() {
	var res *namelist.Result

	BeforeEach(func() {
		res = namelist.NewResult()
	})

	Context("reading a start namelist with nesting", func() {
		BeforeEach(func() {
			Expect(res.Read(strings.NewReader(startNML), true)).To(Succeed())
		})

		It("records every assignment flat", func() {
			Expect(res.Flat).To(HaveKey("ip"))
			Expect(res.Flat["ip"]).To(Equal(namelist.Int(14)))
			Expect(res.Flat["cvsid"]).To(Equal(namelist.String("$Id$")))
			Expect(res.Flat["lperi"].Items()).To(HaveLen(3))
		})

		It("lets the last write win in the flat mapping", func() {
			Expect(res.Flat["rho0"]).To(Equal(namelist.Float(2)))
		})

		It("keeps duplicate names in the name list", func() {
			count := 0
			for _, n := range res.Names {
				if n == "rho0" {
					count++
				}
			}
			Expect(count).To(Equal(2))
		})

		It("declares modules without the reserved init block", func() {
			Expect(res.Modules).To(Equal([]string{"hydro", "density"}))
			Expect(res.Nested).NotTo(HaveKey("init"))
		})

		It("nests module parameters", func() {
			Expect(res.Nested["hydro"]).To(HaveKey("inituu"))
			Expect(res.Nested["hydro"]["ampluu"].Items()).To(HaveLen(3))
			Expect(res.Nested["density"]).To(HaveKeyWithValue("cs0", namelist.Float(1)))
		})

		It("records the conflict under both modules", func() {
			Expect(res.Conflicts).To(HaveKey("hydro"))
			Expect(res.Conflicts).To(HaveKey("density"))

			c := res.Conflicts["hydro"]["rho0"]
			Expect(c.Other).To(Equal("density"))
			Expect(c.Value).To(Equal(namelist.Float(1)))
			Expect(c.OtherValue).To(Equal(namelist.Float(2)))

			Expect(res.ConflictList()).To(HaveLen(2))
			Expect(res.ConflictList()[0].String()).To(Equal("rho0 as 1.0 in hydro conflicts with 2.0 in density"))
		})
	})

	Context("reading without nesting", func() {
		It("records nothing per module", func() {
			Expect(res.Read(strings.NewReader(startNML), false)).To(Succeed())
			Expect(res.Modules).To(BeEmpty())
			Expect(res.Nested).To(BeEmpty())
			Expect(res.Conflicts).To(BeEmpty())
			Expect(res.Flat).To(HaveKey("rho0"))
		})
	})

	Context("identical values in two modules", func() {
		It("does not record a conflict", func() {
			src := " &A_RUN_PARS\n NU=0.5,\n /\n &B_RUN_PARS\n NU=0.50000,\n /\n"
			Expect(res.Read(strings.NewReader(src), true)).To(Succeed())
			Expect(res.Conflicts).To(BeEmpty())
		})

		It("compares ints and floats numerically", func() {
			src := " &A_RUN_PARS\n N=1,\n /\n &B_RUN_PARS\n N=1.0,\n /\n"
			Expect(res.Read(strings.NewReader(src), true)).To(Succeed())
			Expect(res.Conflicts).To(BeEmpty())
		})
	})

	Context("wrapped lines", func() {
		It("joins continuations before parsing", func() {
			src := " &RUN_PARS\n BCX='p','p',\n 'a','s',\n TMAX=10.0,\n /\n"
			Expect(res.Read(strings.NewReader(src), true)).To(Succeed())
			Expect(res.Flat["bcx"]).To(Equal(namelist.Sequence(
				namelist.String("p"), namelist.String("p"),
				namelist.String("a"), namelist.String("s"),
			)))
			Expect(res.Flat["tmax"]).To(Equal(namelist.Float(10)))
		})
	})

	Context("malformed lines", func() {
		It("skips lines without an assignment", func() {
			src := " &RUN_PARS\n garbage\n NT=5,\n /\n"
			Expect(res.Read(strings.NewReader(src), true)).To(Succeed())
			Expect(res.Flat).To(HaveLen(1))
			Expect(res.Flat["nt"]).To(Equal(namelist.Int(5)))
		})
	})

	Context("accumulating two files", func() {
		It("lets the run file override init values", func() {
			Expect(res.Read(strings.NewReader(" &INIT_PARS\n DT=0.1,\n /\n"), true)).To(Succeed())
			Expect(res.Read(strings.NewReader(" &RUN_PARS\n DT=0.2,\n /\n"), true)).To(Succeed())
			Expect(res.Flat["dt"]).To(Equal(namelist.Float(0.2)))
			Expect(res.Names).To(Equal([]string{"dt", "dt"}))
		})
	})

	Describe("ReadFile", func() {
		It("fails before parsing when the file is missing", func() {
			err := res.ReadFile(filepath.Join(GinkgoT().TempDir(), "param.nml"), true)
			Expect(err).To(MatchError(namelist.ErrFileNotFound))
			Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
			Expect(res.Names).To(BeEmpty())
		})

		It("reads a file from disk", func() {
			path := filepath.Join(GinkgoT().TempDir(), "param.nml")
			Expect(os.WriteFile(path, []byte(startNML), 0o644)).To(Succeed())
			Expect(res.ReadFile(path, true)).To(Succeed())
			Expect(res.Flat).To(HaveKey("unit_length"))
		})
	})
})

var _ = DescribeTable("ModuleName",
	func(header, want string) {
		Expect(namelist.ModuleName(header)).To(Equal(want))
	},
	Entry("init block", " &INIT_PARS", "init"),
	Entry("run block", " &RUN_PARS", "run"),
	Entry("module init block", " &HYDRO_INIT_PARS", "hydro"),
	Entry("module run block", "&density_run_pars", "density"),
	Entry("no suffix", " &ENTROPY", "entropy"),
	Entry("underscore module", " &SPECIAL_INIT_PARS", "special"),
)
