package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/narvi/internal/checksum"
	"github.com/dmitrijs2005/narvi/internal/hashfn"
	"github.com/dmitrijs2005/narvi/internal/scheme"
)

// ------------ helpers ------------

var narviEnv = []string{
	"NARVI_CONFIG", "NARVI_DB", "NARVI_HASH_SCHEME", "NARVI_WORD_SCHEME",
	"NARVI_STORE_CHECKSUM", "NARVI_MAX_ATTEMPTS", "NARVI_LOG_LEVEL", "NARVI_LOG_FORMAT",
}

const cheapSchemes = `
hashschemes:
  scrypt-test:
    description: cheap scrypt for tests
    hashfunctionid: scrypt
    hashparams: {N: 16, r: 1, p: 1, dklen: 512}
`

var cheapParams = scheme.Params{"N": 16, "r": 1, "p": 1, "dklen": 512}

type harness struct {
	t       *testing.T
	db      string
	secrets []string
}

// newHarness points the CLI at a fresh database holding the cheap
// "scrypt-test" scheme and replaces the terminal with a queue of secrets.
func newHarness(t *testing.T) *harness {
	t.Helper()
	for _, k := range narviEnv {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	h := &harness{t: t, db: filepath.Join(t.TempDir(), "narvi.db")}
	old := readPassword
	readPassword = func(int) ([]byte, error) {
		if len(h.secrets) == 0 {
			return nil, errors.New("no secret queued")
		}
		s := h.secrets[0]
		h.secrets = h.secrets[1:]
		return []byte(s), nil
	}
	t.Cleanup(func() { readPassword = old })

	_, err := h.run("", "define", h.file("cheap.yaml", cheapSchemes))
	require.NoError(t, err)
	return h
}

func (h *harness) file(name, content string) string {
	h.t.Helper()
	path := filepath.Join(h.t.TempDir(), name)
	require.NoError(h.t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (h *harness) run(input string, args ...string) (string, error) {
	var out, errOut bytes.Buffer
	args = append(args, "--db", h.db, "--hash-scheme", "scrypt-test", "--word-scheme", "pin-6")
	err := Execute(context.Background(), args, Streams{In: strings.NewReader(input), Out: &out, Err: &errOut})
	return out.String(), err
}

var passwordLine = regexp.MustCompile(`Password: (\S+)`)

func password(t *testing.T, out string) string {
	t.Helper()
	m := passwordLine.FindStringSubmatch(out)
	require.NotNil(t, m, "no password in output:\n%s", out)
	return m[1]
}

// wrongSecret returns a secret whose checksum for salt differs from that
// of right, so it is guaranteed to be rejected.
func wrongSecret(t *testing.T, salt, right string) string {
	t.Helper()
	sum := func(secret string) uint8 {
		key, err := hashfn.Scrypt{}.Derive(cheapParams, []byte(secret), []byte(salt))
		require.NoError(t, err)
		return checksum.Sum(key)
	}
	want := sum(right)
	for i := 0; ; i++ {
		candidate := fmt.Sprintf("wrong-%d", i)
		if sum(candidate) != want {
			return candidate
		}
	}
}
