package visualization

// VisualizationClassWrapper represents the document a visualization class is
// stored in.
type VisualizationClassWrapper struct {
	VisualizationClass *VisualizationClass `json:"visualizationClass"`
}

// VisualizationClass represents a renderable visualization type registered
// with the platform, e.g. a bar chart or a headline.
type VisualizationClass struct {
	Meta    ObjectMeta                `json:"meta"`
	Content VisualizationClassContent `json:"content"`
}

// VisualizationClassContent represents the content of a visualization class.
// URL points at the renderer implementation; local: urls name the built-in
// visualizations.
type VisualizationClassContent struct {
	URL          string  `json:"url"`
	Icon         string  `json:"icon"`
	IconSelected string  `json:"iconSelected"`
	Checksum     string  `json:"checksum"`
	OrderIndex   float64 `json:"orderIndex,omitempty"`
}
