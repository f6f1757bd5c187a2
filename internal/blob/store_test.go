package blob

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndURL(t *testing.T) {
	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	key, err := s.Save("poster.PNG", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, ".png"))

	data, err := os.ReadFile(filepath.Join(s.Root(), key))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))

	assert.Equal(t, "/uploads/"+key, s.URL(key))
}

func TestSaveGeneratesUniqueKeys(t *testing.T) {
	s, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	k1, err := s.Save("same.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	k2, err := s.Save("same.jpg", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, k1, k2)
}

func TestSafeExt(t *testing.T) {
	assert.Equal(t, ".jpg", safeExt("a.jpg"))
	assert.Equal(t, ".png", safeExt("A.PNG"))
	assert.Equal(t, "", safeExt("noext"))
	assert.Equal(t, "", safeExt("weird.j%g"))
	assert.Equal(t, "", safeExt("long.extension-way-too-long"))
}
