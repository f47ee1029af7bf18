// SPDX-License-Identifier: MIT
// Package config_test verifies clone depth semantics and lenient updates of
// map-backed configuration prototypes.

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/protokit/clone"
	"github.com/katalvlaran/protokit/config"
	"github.com/katalvlaran/protokit/prototype"
)

// certFile stands in for an open certificate handle.
type certFile struct{ path string }

func (*certFile) Resource() {}

func baseDB() *config.Config {
	return config.Database("localhost", 5432, "production_db", "admin", "secure_password")
}

func mustClone(t *testing.T, c *config.Config, d clone.Depth) *config.Config {
	t.Helper()
	out, err := c.Clone(d)
	require.NoError(t, err)
	require.NotSame(t, c, out)

	return out.(*config.Config)
}

func TestAccessors(t *testing.T) {
	c := baseDB()
	require.Equal(t, config.KindDatabase, c.Kind())
	require.Equal(t, []string{"host", "port", "database", "username", "password", "connection_pool", "ssl"}, c.Keys())

	v, ok := c.Get("port")
	require.True(t, ok)
	require.Equal(t, 5432, v)

	v, ok = c.Lookup("connection_pool.max_connections")
	require.True(t, ok)
	require.Equal(t, 20, v)

	_, ok = c.Lookup("connection_pool.missing")
	require.False(t, ok)
	_, ok = c.Lookup("host.inner")
	require.False(t, ok)

	require.Equal(t, "database(host=localhost port=5432 database=production_db username=admin password=secure_password)", c.String())
}

func TestClone_ShallowSharesSections(t *testing.T) {
	src := baseDB()
	shallow := mustClone(t, src, clone.Shallow)
	deep := mustClone(t, src, clone.Deep)

	require.NoError(t, shallow.SetField("host", "dev-server"))
	host, _ := src.Get("host")
	require.Equal(t, "localhost", host)

	// Mutate the source's nested pool in place.
	pool, _ := src.Get("connection_pool")
	pool.(map[string]any)["max_connections"] = 99

	v, _ := shallow.Lookup("connection_pool.max_connections")
	require.Equal(t, 99, v)
	v, _ = deep.Lookup("connection_pool.max_connections")
	require.Equal(t, 20, v)
}

func TestClone_ResourceField(t *testing.T) {
	src := baseDB()
	require.NoError(t, src.SetField("ssl", map[string]any{"enabled": true, "cert_path": &certFile{path: "/certs/test.crt"}}))

	_, err := src.Clone(clone.Shallow)
	require.NoError(t, err)

	_, err = src.Clone(clone.Deep)
	var nc *clone.NotCloneableError
	require.ErrorAs(t, err, &nc)
	require.Equal(t, "ssl.cert_path", nc.Field)
}

func TestUpdate_Lenient(t *testing.T) {
	c := baseDB()
	ignored := c.Update(map[string]any{
		"host":            "test-server",
		"colour":          "blue",
		"ssl":             "not-a-section",
		"connection_pool": map[string]any{"min_connections": 2, "max_connections": 10},
	})
	require.Equal(t, []string{"colour", "ssl"}, ignored)

	host, _ := c.Get("host")
	require.Equal(t, "test-server", host)
	_, ok := c.Lookup("connection_pool.timeout")
	require.False(t, ok, "overrides replace whole sections")

	ssl, _ := c.Lookup("ssl.enabled")
	require.Equal(t, false, ssl)
}

func TestSetField_Errors(t *testing.T) {
	c := baseDB()
	require.ErrorIs(t, c.SetField("colour", "blue"), clone.ErrUnknownField)
	require.ErrorIs(t, c.SetField("ssl", true), config.ErrTypeMismatch)
	require.NoError(t, c.SetField("password", nil))
}

func TestRegistryScenario(t *testing.T) {
	reg := prototype.New()
	tmpl := baseDB()
	before := mustClone(t, tmpl, clone.Deep).Fields()
	require.NoError(t, reg.Register("db", tmpl))

	dev, err := prototype.CreateAs[*config.Config](reg, "db", clone.Deep, prototype.Overrides{"host": "dev-server"})
	require.NoError(t, err)
	host, _ := dev.Get("host")
	require.Equal(t, "dev-server", host)

	base, err := prototype.CreateAs[*config.Config](reg, "db", clone.Deep, nil)
	require.NoError(t, err)
	host, _ = base.Get("host")
	require.Equal(t, "localhost", host)
	require.Empty(t, cmp.Diff(before, tmpl.Fields()))

	_, err = reg.Create("db", clone.Deep, prototype.Overrides{"ssl": 1})
	require.ErrorIs(t, err, prototype.ErrInvalidOverride)
	require.ErrorIs(t, err, config.ErrTypeMismatch)
}

func TestDocumentTemplate_SectionsIndependence(t *testing.T) {
	original := config.DocumentTemplate("Original Document", "Original Author", "default")
	require.NoError(t, original.AddSection("Section 1", "Original content"))

	cloned := mustClone(t, original, clone.Deep)
	require.Empty(t, cloned.Update(map[string]any{"title": "Modified Document", "author": "Modified Author"}))
	require.NoError(t, cloned.AddSection("Section 2", "New content added to clone"))

	require.Equal(t, []string{"Section 1"}, original.Sections())
	require.Equal(t, []string{"Section 1", "Section 2"}, cloned.Sections())

	order, _ := cloned.Lookup("content.sections")
	require.Equal(t, 2, order.([]any)[1].(map[string]any)["order"])

	title, _ := original.Get("title")
	require.Equal(t, "Original Document", title)

	// A shallow clone shares the content section, so its sections leak back.
	shallow := mustClone(t, original, clone.Shallow)
	require.NoError(t, shallow.AddSection("Shared", "visible in both"))
	require.Equal(t, []string{"Section 1", "Shared"}, original.Sections())
}

func TestAddSection_NoContent(t *testing.T) {
	require.ErrorIs(t, baseDB().AddSection("x", "y"), config.ErrNoSections)
}

func TestAPI_Preset(t *testing.T) {
	c := config.API("https://api.mycompany.com", "prod_key_12345", "v2")
	ua, ok := c.Lookup("headers.User-Agent")
	require.True(t, ok)
	require.Equal(t, "MyApp/1.0", ua)
	require.Equal(t, "api(base_url=https://api.mycompany.com api_key=prod_key_12345 version=v2 timeout=30 retry_attempts=3)", c.String())
}
