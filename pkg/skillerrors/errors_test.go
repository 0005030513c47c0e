package skillerrors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindSurvivesWrapping(t *testing.T) {
	err := NotFound("ghost")
	wrapped := errors.Wrap(err, "while reading skill")

	assert.True(t, Is(wrapped, KindNotFound))
	assert.Equal(t, KindNotFound, KindOf(wrapped))
}

func TestWrapNilIsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, KindIO, "no-op"))
	assert.NoError(t, IO(nil, "no-op"))
}

func TestErrorMessageIncludesKindAndCause(t *testing.T) {
	cause := errors.New("permission denied")
	err := IO(cause, "failed to read %s", "/skills")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "io")
	assert.Contains(t, err.Error(), "/skills")
	assert.Contains(t, err.Error(), "permission denied")
	assert.Equal(t, cause, errors.Cause(err.(*Error).Err))
}

func TestKindOfUnkindedError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.False(t, Is(errors.New("plain"), KindParse))
}

func TestConfigAndInstallConstructors(t *testing.T) {
	assert.True(t, Is(Config("circular dependency detected: %s", "a"), KindConfig))
	assert.True(t, Is(Install("bad source kind"), KindInstall))
	assert.True(t, Is(Parse(nil, "empty manifest"), KindParse))
}
