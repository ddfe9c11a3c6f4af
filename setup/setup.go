// Package setup bundles the one-shot seed data for the food library.
package setup

import _ "embed"

//go:embed seed_data.sql
var SeedSQL string
