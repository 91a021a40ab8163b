package progress

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dbsmedya/titlex/internal/titles"
)

var _ titles.Reporter = (*BarReporter)(nil)

func TestBarReporter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	r := NewBarReporter(&buf, true)

	r.OnDiscoveryComplete(3)
	r.OnFileExtracted("a/Title.xml")
	r.OnFileExtracted("b/Title.xml")
	r.OnComplete(&titles.Result{})

	assert.Empty(t, buf.String())
	assert.Nil(t, r.bar)
}

func TestBarReporter_RendersBar(t *testing.T) {
	var buf bytes.Buffer
	r := NewBarReporter(&buf, false)

	r.OnDiscoveryComplete(2)
	r.OnFileExtracted("a/Title.xml")
	r.OnFileExtracted("b/Title.xml")
	r.OnComplete(&titles.Result{})

	out := buf.String()
	assert.Contains(t, out, "Extracting titles")
	assert.NotContains(t, out, "files/s/s")
	assert.Nil(t, r.bar)
}

func TestBarReporter_NoFiles(t *testing.T) {
	var buf bytes.Buffer
	r := NewBarReporter(&buf, false)

	r.OnDiscoveryComplete(0)
	r.OnComplete(&titles.Result{})

	assert.Empty(t, buf.String())
	assert.Nil(t, r.bar)
}

func TestBarReporter_FailureEndsLine(t *testing.T) {
	var buf bytes.Buffer
	r := NewBarReporter(&buf, false)

	r.OnDiscoveryComplete(3)
	r.OnFileExtracted("a/Title.xml")
	r.OnFailed(errors.New("boom"))

	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
	assert.Nil(t, r.bar)

	// A second failure has no bar left to close.
	before := buf.Len()
	r.OnFailed(errors.New("boom"))
	assert.Equal(t, before, buf.Len())
}

func TestBarReporter_FailureBeforeDiscovery(t *testing.T) {
	var buf bytes.Buffer
	r := NewBarReporter(&buf, false)

	r.OnFailed(errors.New("boom"))
	assert.Empty(t, buf.String())
}
