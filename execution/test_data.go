package execution

const inputExecutionResponse = `{
	"executionResponse": {
		"links": {"executionResult": "/gdc/app/projects/p1/executionResults/123"},
		"dimensions": [
			{
				"headers": [
					{
						"attributeHeader": {
							"uri": "/gdc/md/p1/obj/1027",
							"identifier": "label.region",
							"localIdentifier": "a1",
							"name": "Region",
							"formOf": {
								"uri": "/gdc/md/p1/obj/1024",
								"identifier": "attr.region",
								"name": "Region"
							}
						}
					}
				]
			},
			{
				"headers": [
					{
						"measureGroupHeader": {
							"items": [
								{
									"measureHeaderItem": {
										"localIdentifier": "m1",
										"name": "Revenue",
										"format": "#,##0.00"
									}
								},
								{
									"measureHeaderItem": {
										"localIdentifier": "m2",
										"name": "Revenue last year",
										"format": "#,##0.00"
									}
								}
							]
						}
					}
				]
			}
		]
	}
}`

const inputExecutionResult = `{
	"executionResult": {
		"data": [["123.45", "98.1"], [null, "23.0"]],
		"headerItems": [
			[
				[
					{"attributeHeaderItem": {"uri": "/gdc/md/p1/obj/1024/elements?id=1", "name": "East"}},
					{"attributeHeaderItem": {"uri": "/gdc/md/p1/obj/1024/elements?id=2", "name": "West"}}
				]
			],
			[
				[
					{"measureHeaderItem": {"name": "Revenue", "order": 0}},
					{"measureHeaderItem": {"name": "Revenue last year", "order": 1}}
				]
			]
		],
		"paging": {"count": [2, 2], "offset": [0, 0], "total": [2, 2]},
		"warnings": [
			{"warningCode": "gdc112", "message": "Metric does not respect dimensionality"}
		]
	}
}`
