package htmlextract

// Configuration selects which parts of an Article get populated.
// Language is always extracted since it gates text scoring.
type Configuration struct {
	EnableTextExtraction       bool
	EnableMetaExtraction       bool
	EnableEmbeddingsExtraction bool
}

// NewConfiguration returns a Configuration with every flag enabled, the
// default the specification calls for.
func NewConfiguration() Configuration {
	return Configuration{
		EnableTextExtraction:       true,
		EnableMetaExtraction:       true,
		EnableEmbeddingsExtraction: true,
	}
}
