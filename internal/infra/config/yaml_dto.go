package config

type YAMLConfig struct {
	Match   YAMLMatch   `yaml:"match"`
	Compare YAMLCompare `yaml:"compare"`
	Render  YAMLRender  `yaml:"render"`
	Report  YAMLReport  `yaml:"report"`
}

type YAMLMatch struct {
	Pattern    string   `yaml:"pattern"`
	Extensions []string `yaml:"extensions"`
}

type YAMLCompare struct {
	Threshold *int `yaml:"threshold"`
}

type YAMLRender struct {
	Highlight string     `yaml:"highlight"` // "#RRGGBB"
	LabelBar  *int       `yaml:"label_bar"`
	Labels    YAMLLabels `yaml:"labels"`
}

type YAMLLabels struct {
	A    string `yaml:"a"`
	B    string `yaml:"b"`
	Diff string `yaml:"diff"`
}

type YAMLReport struct {
	Filename string `yaml:"filename"`
}
