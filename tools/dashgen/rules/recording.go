package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "sellerdash-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "sellerdash-recording",
					Rules: []Rule{
						{
							Record: "sellerdash:http_requests:rate5m",
							Expr:   `sum(rate(sellerdash_http_requests_total[5m]))`,
						},
						{
							Record: "sellerdash:http_errors:rate5m",
							Expr:   `sum(rate(sellerdash_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "sellerdash:spapi_calls:rate5m",
							Expr:   `sum(rate(sellerdash_spapi_calls_total[5m])) by (category)`,
						},
						{
							Record: "sellerdash:spapi_errors:rate5m",
							Expr:   `sum(rate(sellerdash_spapi_calls_total{status!~"2.."}[5m])) by (category)`,
						},
						{
							Record: "sellerdash:token_refresh_failures:rate5m",
							Expr:   `rate(sellerdash_spapi_token_refresh_failures_total[5m])`,
						},
						{
							Record: "sellerdash:client_throttled:rate5m",
							Expr:   `rate(sellerdash_client_throttled_total[5m])`,
						},
					},
				},
			},
		},
	}
}
