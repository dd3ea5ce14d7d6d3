package config

import _ "embed"

// DefaultConfigYAML 内置默认配置，外部配置文件与环境变量在其之上覆盖
//
//go:embed default.yaml
var DefaultConfigYAML []byte
