package afm

var revenueMeasure = Measure{
	LocalIdentifier: "m1",
	Definition: MeasureDefinition{
		Measure: &SimpleMeasureDefinition{
			Item:        ObjQualifier{Identifier: "attr.revenue"},
			Aggregation: AggregationSum,
		},
	},
	Format: "#,##0.00",
}

var revenueLastYearMeasure = Measure{
	LocalIdentifier: "m2",
	Definition: MeasureDefinition{
		PopMeasure: &PopMeasureDefinition{
			MeasureIdentifier: "m1",
			PopAttribute:      ObjQualifier{URI: "/gdc/md/project/obj/1234"},
		},
	},
	Alias: "Revenue last year",
}

var revenueChangeMeasure = Measure{
	LocalIdentifier: "m3",
	Definition: MeasureDefinition{
		ArithmeticMeasure: &ArithmeticMeasureDefinition{
			MeasureIdentifiers: []string{"m1", "m2"},
			Operator:           OperatorChange,
		},
	},
}

var regionAttribute = Attribute{
	DisplayForm:     ObjQualifier{Identifier: "label.region"},
	LocalIdentifier: "a1",
}

var inputExecution = Execution{
	Execution: ExecutionBody{
		AFM: AFM{
			Attributes: []Attribute{regionAttribute},
			Measures:   []Measure{revenueMeasure, revenueLastYearMeasure, revenueChangeMeasure},
			Filters: []CompatibilityFilter{
				{
					FilterItem: FilterItem{
						PositiveAttributeFilter: &PositiveAttributeFilter{
							DisplayForm: ObjQualifier{Identifier: "label.region"},
							In:          []string{"East", "West"},
						},
					},
				},
				{
					FilterItem: FilterItem{
						RelativeDateFilter: &RelativeDateFilter{
							DataSet:     ObjQualifier{Identifier: "closed.dataset"},
							Granularity: "GDC.time.year",
							From:        -1,
							To:          0,
						},
					},
				},
			},
			NativeTotals: []NativeTotal{
				{MeasureIdentifier: "m1", AttributeIdentifiers: []string{"a1"}},
			},
		},
		ResultSpec: &ResultSpec{
			Dimensions: []Dimension{
				{
					ItemIdentifiers: []string{"a1"},
					Totals: []Total{
						{Type: TotalNative, MeasureIdentifier: "m1", AttributeIdentifier: "a1"},
					},
				},
				{ItemIdentifiers: []string{MeasureGroupIdentifier}},
			},
			Sorts: []SortItem{
				{AttributeSortItem: &AttributeSortItem{Direction: SortDesc, AttributeIdentifier: "a1"}},
				{MeasureSortItem: &MeasureSortItem{
					Direction: SortDesc,
					Locators: []LocatorItem{
						{MeasureLocatorItem: &MeasureLocatorItem{MeasureIdentifier: "m1"}},
					},
				}},
			},
		},
	},
}
