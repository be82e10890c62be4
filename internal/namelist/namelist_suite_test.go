package namelist_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestNamelist(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Namelist Suite")
}
