// SPDX-License-Identifier: MIT
//
// Package config implements map-backed configuration prototypes: a Kind tag
// plus an ordered set of top-level fields whose values are scalars or nested
// sections (map[string]any) and lists ([]any, []string).
//
// A *Config is a clone.Cloneable and a prototype.Patcher, so it can be
// registered in a prototype.Registry and customised per environment:
//
//	reg := prototype.New()
//	_ = reg.Register("base_db", config.Database("localhost", 5432, "production_db", "admin", "secret"))
//	dev, _ := prototype.CreateAs[*config.Config](reg, "base_db", clone.Deep,
//		prototype.Overrides{"host": "dev-server", "database": "dev_db"})
//
// Overrides and Update replace whole top-level fields; they never merge into
// nested sections. Unknown top-level keys are ignored (Update reports them,
// SetField returns clone.ErrUnknownField so the registry can warn).
//
// Templates can be kept in YAML and loaded with Decode/LoadFile:
//
//	prototypes:
//	  - name: base_db
//	    kind: database
//	    fields:
//	      host: localhost
//	      port: 5432
//	      connection_pool: {min_connections: 5, max_connections: 20}
//
// Document order in the file is field order and registration order.
package config
