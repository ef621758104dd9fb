package visualization

import "github.com/pbenes/gooddata-typings/afm"

var inputVisualizationObject = VisualizationObject{
	Meta: ObjectMeta{
		Title:        "Revenue by region",
		Summary:      "Yearly revenue split by sales region",
		Category:     "visualizationObject",
		Tags:         "revenue sales",
		IsProduction: true,
	},
	Content: VisualizationObjectContent{
		VisualizationClass: afm.ObjQualifier{URI: "/gdc/md/p1/obj/bar"},
		Buckets: []Bucket{
			{
				LocalIdentifier: "measures",
				Items: []BucketItem{
					{
						Measure: &Measure{
							LocalIdentifier: "m1",
							Title:           "Revenue",
							Definition: MeasureDefinition{
								MeasureDefinition: &afm.SimpleMeasureDefinition{
									Item: afm.ObjQualifier{Identifier: "attr.revenue"},
								},
							},
						},
					},
					{
						Measure: &Measure{
							LocalIdentifier: "m2",
							Definition: MeasureDefinition{
								PopMeasureDefinition: &afm.PopMeasureDefinition{
									MeasureIdentifier: "m1",
									PopAttribute:      afm.ObjQualifier{Identifier: "attr.year"},
								},
							},
						},
					},
				},
				Totals: []Total{
					{Type: afm.TotalSum, MeasureIdentifier: "m1", AttributeIdentifier: "a1", Alias: "Total revenue"},
				},
			},
			{
				LocalIdentifier: "view",
				Items: []BucketItem{
					{
						VisualizationAttribute: &VisualizationAttribute{
							LocalIdentifier: "a1",
							DisplayForm:     afm.ObjQualifier{Identifier: "label.region"},
						},
					},
				},
			},
		},
		Filters: []afm.CompatibilityFilter{
			{
				FilterItem: afm.FilterItem{
					NegativeAttributeFilter: &afm.NegativeAttributeFilter{
						DisplayForm: afm.ObjQualifier{Identifier: "label.region"},
						NotIn:       []string{"Unknown"},
					},
				},
			},
		},
		Properties: `{"controls":{"legend":{"position":"top"}}}`,
		References: map[string]string{"ref1": "/gdc/md/p1/obj/42"},
	},
}
