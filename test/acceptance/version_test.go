// ABOUTME: Acceptance tests for version output and the non-TTY dashboard guard
package acceptance

import (
	"github.com/lazyclaude/lazyclaude/test/helpers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("version", func() {
	It("prints the injected version", func() {
		env := helpers.NewTestEnv(binaryPath)

		result := env.Run("--version")

		Expect(result.ExitCode).To(Equal(0))
		Expect(result.Stdout).To(ContainSubstring("dev"))
	})
})

var _ = Describe("dashboard without a terminal", func() {
	It("refuses to start and points at list", func() {
		env := helpers.NewTestEnv(binaryPath)

		result := env.Run()

		Expect(result.ExitCode).To(Equal(1))
		Expect(result.Stderr).To(ContainSubstring("requires a terminal"))
	})
})
