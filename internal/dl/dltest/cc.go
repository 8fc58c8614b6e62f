//go:build linux && (amd64 || arm64)

package dltest

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// LibOpenBLTSource is a minimal C rendition of the LibOpenBLT version
// exports. Define OMIT_NUMBER or OMIT_STRING to leave an export out and
// NUMBER_DELAY_US to make BltVersionGetNumber sleep before returning.
const LibOpenBLTSource = `
#include <stdint.h>
#include <unistd.h>

#ifndef NUMBER_DELAY_US
#define NUMBER_DELAY_US 0
#endif

#ifndef OMIT_NUMBER
uint32_t BltVersionGetNumber(void)
{
  if (NUMBER_DELAY_US > 0)
  {
    usleep(NUMBER_DELAY_US);
  }
  return 10512u;
}
#endif

#ifndef OMIT_STRING
char const * BltVersionGetString(void)
{
  return "1.05.12";
}
#endif
`

// BuildSharedObject compiles src into a shared object named name inside a
// temporary directory and returns its path. The test is skipped when no C
// compiler is available.
func BuildSharedObject(t testing.TB, name, src string, cflags ...string) string {
	t.Helper()

	cc := os.Getenv("CC")
	if cc == "" {
		cc = "cc"
	}
	if _, err := exec.LookPath(cc); err != nil {
		t.Skipf("no C compiler (%s) on PATH", cc)
	}

	dir := t.TempDir()
	srcPath := filepath.Join(dir, "libopenblt.c")
	if err := os.WriteFile(srcPath, []byte(src), 0o600); err != nil {
		t.Fatalf("write source: %v", err)
	}

	out := filepath.Join(dir, name)
	args := append([]string{"-shared", "-fPIC", "-o", out}, cflags...)
	args = append(args, srcPath)
	if msg, err := exec.Command(cc, args...).CombinedOutput(); err != nil {
		t.Fatalf("%s %v: %v\n%s", cc, args, err, msg)
	}
	return out
}
