package titles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	swordXML = `<?xml version="1.0" encoding="utf-8"?>
<Title>
  <id>1001</id>
  <name><str>Sword</str></name>
  <rareType>Legendary</rareType>
</Title>`

	shieldXML = `<Title>
  <name><str>Shield</str></name>
</Title>`
)

// writeDoc creates root/rel with content, making parent directories.
func writeDoc(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
