package config

import (
	_ "embed"
)

//go:embed defaults/host.yaml
var defaultHostYAML []byte
