package hyperlink_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hyperlink/internal/crypto"
	"hyperlink/internal/domain"
	"hyperlink/internal/link"
	"hyperlink/internal/services/hyperlink"
)

const testPassword = "testPassword123"

var fast = crypto.Params{Time: 1, MemoryKiB: 8 * 1024, Threads: 1}

// countingReader counts bytes drawn from crypto/rand.
type countingReader struct{ n atomic.Int64 }

func (r *countingReader) Read(p []byte) (int, error) {
	n, err := rand.Read(p)
	r.n.Add(int64(n))
	return n, err
}

func newService(t *testing.T, origin string, r io.Reader) *hyperlink.Service {
	t.Helper()
	return hyperlink.New(link.New(origin, fast), r, nil)
}

func TestCreate_AllVersions(t *testing.T) {
	svc := newService(t, "", nil)
	prefixes := map[domain.Version]string{domain.V0: "", domain.V1: "_1_", domain.V2: "_2_"}

	for _, v := range domain.Versions {
		hl, err := svc.Create(v, testPassword)
		require.NoError(t, err)
		assert.Equal(t, v, hl.Version)
		assert.NotEmpty(t, hl.URL.Fragment)
		assert.NotEmpty(t, hl.Keypair.PublicKeyBase58())

		if p := prefixes[v]; p != "" {
			assert.True(t, strings.HasPrefix(hl.URL.Fragment, p), "fragment %q", hl.URL.Fragment)
		} else {
			assert.False(t, strings.HasPrefix(hl.URL.Fragment, link.Delimiter))
		}
	}
}

func TestCreateRecover_AllVersions(t *testing.T) {
	svc := newService(t, "", nil)

	for _, v := range domain.Versions {
		created, err := svc.Create(v, testPassword)
		require.NoError(t, err)

		password := ""
		if v == domain.V2 {
			password = testPassword
		}
		recovered, err := svc.RecoverFromString(created.String(), password)
		require.NoError(t, err, "version %s", v)

		assert.Equal(t, created.URL.Fragment, recovered.URL.Fragment)
		assert.Equal(t, v, recovered.Version)
		assert.Equal(t, created.Keypair.PublicKeyBase58(), recovered.Keypair.PublicKeyBase58())
		assert.True(t, created.Keypair.Equal(recovered.Keypair))
	}
}

func TestVersion1_RecoversWithoutPassword(t *testing.T) {
	svc := newService(t, "", nil)
	created, err := svc.Create(domain.V1, "pw")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^https://hyperlink\.org/i#_1_[1-9A-HJ-NP-Za-km-z]{19,23}$`), created.String())

	recovered, err := svc.RecoverFromString(created.String(), "")
	require.NoError(t, err)
	assert.Equal(t, created.Keypair.PublicKeyBase58(), recovered.Keypair.PublicKeyBase58())
}

func TestVersion2_WrongPassword(t *testing.T) {
	svc := newService(t, "", nil)
	created, err := svc.Create(domain.V2, "correct")
	require.NoError(t, err)

	recovered, err := svc.RecoverFromURL(created.URL, "wrong")
	assert.ErrorIs(t, err, domain.ErrAuthenticationFailure)
	assert.Nil(t, recovered)
}

func TestVersion2_MissingPassword(t *testing.T) {
	svc := newService(t, "", nil)
	created, err := svc.Create(domain.V2, testPassword)
	require.NoError(t, err)

	_, err = svc.RecoverFromString(created.String(), "")
	require.ErrorIs(t, err, domain.ErrMissingPassword)
	assert.EqualError(t, err, "password is required for version 2 links")
}

func TestCreate_Version2RequiresPassword(t *testing.T) {
	r := &countingReader{}
	svc := newService(t, "", r)

	_, err := svc.Create(domain.V2, "")
	assert.ErrorIs(t, err, domain.ErrMissingPassword)
	assert.Zero(t, r.n.Load())
}

func TestCreate_InvalidVersionConsumesNoEntropy(t *testing.T) {
	r := &countingReader{}
	svc := newService(t, "", r)

	for _, v := range []domain.Version{-1, 3, 255} {
		hl, err := svc.Create(v, testPassword)
		assert.ErrorIs(t, err, domain.ErrInvalidVersion)
		assert.Nil(t, hl)
	}
	assert.Zero(t, r.n.Load())
}

func TestCreate_EntropyUse(t *testing.T) {
	r := &countingReader{}
	svc := newService(t, "", r)

	_, err := svc.Create(domain.V0, "")
	require.NoError(t, err)
	assert.EqualValues(t, 12, r.n.Load())

	_, err = svc.Create(domain.V2, testPassword)
	require.NoError(t, err)
	assert.EqualValues(t, 12+16+crypto.NonceBytes, r.n.Load())
}

func TestCreate_ShortEntropySource(t *testing.T) {
	svc := newService(t, "", strings.NewReader("too short"))
	_, err := svc.Create(domain.V1, "")
	assert.ErrorIs(t, err, domain.ErrCryptoInit)
}

func TestRecoverFromString_InvalidURL(t *testing.T) {
	svc := newService(t, "", nil)
	for _, text := range []string{"", "not a url", "/i#_1_abc", "://missing-scheme", "http://[::1"} {
		_, err := svc.RecoverFromString(text, "")
		assert.ErrorIs(t, err, domain.ErrInvalidURL, "text %q", text)
	}
}

func TestRecoverFromURL_Nil(t *testing.T) {
	_, err := newService(t, "", nil).RecoverFromURL(nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidURL)
}

func TestRecover_IgnoresOrigin(t *testing.T) {
	a := newService(t, "https://a.example", nil)
	b := newService(t, "https://b.example", nil)

	created, err := a.Create(domain.V1, "")
	require.NoError(t, err)
	recovered, err := b.RecoverFromURL(created.URL, "")
	require.NoError(t, err)
	assert.True(t, created.Keypair.Equal(recovered.Keypair))
	assert.Equal(t, "a.example", recovered.URL.Host)
}

func TestConcurrentOrigins(t *testing.T) {
	origins := []string{"https://one.example", "https://two.example", "http://localhost:8080"}

	var wg sync.WaitGroup
	errs := make(chan error, len(origins))
	for _, origin := range origins {
		wg.Add(1)
		go func(origin string) {
			defer wg.Done()
			svc := hyperlink.New(link.New(origin, fast), nil, nil)
			hl, err := svc.Create(domain.V2, testPassword)
			if err != nil {
				errs <- err
				return
			}
			if !strings.HasPrefix(hl.String(), origin+link.Path+"#_2_") {
				errs <- assert.AnError
				return
			}
			u, _ := url.Parse(hl.String())
			got, err := svc.RecoverFromURL(u, testPassword)
			if err != nil {
				errs <- err
				return
			}
			if !got.Keypair.Equal(hl.Keypair) {
				errs <- assert.AnError
			}
		}(origin)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

// TestInteractiveParams pins the production cost parameters end to end.
func TestInteractiveParams(t *testing.T) {
	if testing.Short() {
		t.Skip("argon2id interactive cost")
	}
	svc := hyperlink.New(link.New("", crypto.InteractiveParams), nil, nil)
	created, err := svc.Create(domain.V2, testPassword)
	require.NoError(t, err)
	recovered, err := svc.RecoverFromString(created.String(), testPassword)
	require.NoError(t, err)
	assert.True(t, created.Keypair.Equal(recovered.Keypair))
}

// Links and public keys below were produced with libsodium using the same
// secrets, password and nonce as the crypto package vectors.
func TestRecover_KnownLinks(t *testing.T) {
	svc := hyperlink.New(link.New("", crypto.InteractiveParams), nil, nil)
	cases := []struct {
		link     string
		password string
		version  domain.Version
		pub      string
	}{
		{"https://hyperlink.org/i#26ysEDTvDr2AqkA7", "", domain.V0,
			"Av5Sv4j9WscZYX28YFJFrxknz2A9rMmKaNksfJtvNQGF"},
		{"https://hyperlink.org/i#_1_2z57mqVKV81ov6EoKXKtP8", "", domain.V1,
			"FFLRJfnKbhLoiCF7tVAv5QMDaRVxtPrdgcAMcBYTBVbt"},
		{"https://hyperlink.org/i#_2_2jvjY6Cbky1JxBD8feDZ7zCKkKD7Rao9rYmCez4LuKDmiUxrJ8SN7MSVVKzV2uAf2wKfG4P6oozwY",
			testPassword, domain.V2, "FFLRJfnKbhLoiCF7tVAv5QMDaRVxtPrdgcAMcBYTBVbt"},
	}
	for _, tc := range cases {
		t.Run(tc.version.String(), func(t *testing.T) {
			hl, err := svc.RecoverFromString(tc.link, tc.password)
			require.NoError(t, err)
			assert.Equal(t, tc.version, hl.Version)
			assert.Equal(t, tc.pub, hl.Keypair.PublicKeyBase58())
			assert.Equal(t, tc.link, hl.String())
		})
	}
}

func TestLogging_PublicKeyOnly(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := hyperlink.New(link.New("", fast), nil, log)

	created, err := svc.Create(domain.V2, testPassword)
	require.NoError(t, err)
	_, err = svc.RecoverFromURL(created.URL, testPassword)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"link created"`)
	assert.Contains(t, out, `"msg":"link recovered"`)
	assert.Contains(t, out, `"public_key":"`+created.Keypair.PublicKeyBase58()+`"`)
	assert.Contains(t, out, `"version":2`)
	assert.NotContains(t, out, created.URL.Fragment)
	assert.NotContains(t, out, testPassword)
}

func TestRecoverFromString_KeepsParseError(t *testing.T) {
	_, err := newService(t, "", nil).RecoverFromString("http://[::1", "")
	require.ErrorIs(t, err, domain.ErrInvalidURL)

	var urlErr *url.Error
	assert.True(t, errors.As(err, &urlErr), "url.Error lost from chain: %v", err)
}
