// Package assets embeds the static study guide shipped with the bot.
package assets

import _ "embed"

// CranialNervesCSV is the default study guide.
//
//go:embed data/cranial_nerves.csv
var CranialNervesCSV []byte
