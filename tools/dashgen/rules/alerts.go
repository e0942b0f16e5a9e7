package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// sellerdash operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "sellerdash-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "sellerdash-alerts",
					Rules: []Rule{
						{
							Alert: "SellerdashDown",
							Expr:  `absent(up{job="sellerdash"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "sellerdash is down",
								"description": "The sellerdash job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "SellerdashReadinessDown",
							Expr:  `sellerdash_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "sellerdash readiness check is failing",
								"description": "The readiness probe has been reporting not-ready for more than 2 minutes, usually because required SP-API credentials are missing.",
							},
						},
						{
							Alert: "SellerdashHighErrorRate",
							Expr:  `sellerdash:http_errors:rate5m / sellerdash:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on sellerdash",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "SellerdashTokenRefreshFailures",
							Expr:  `increase(sellerdash_spapi_token_refresh_failures_total[10m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "LWA token refresh is failing",
								"description": "One or more LWA token exchanges have failed in the last 10 minutes. Every SP-API call fails until a token can be obtained.",
							},
						},
						{
							Alert: "SellerdashUpstreamErrors",
							Expr:  `sum(sellerdash:spapi_errors:rate5m) > 0.5`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Elevated SP-API failure rate",
								"description": "SP-API calls are failing at more than 0.5/s across all categories for the last 5 minutes.",
							},
						},
						{
							Alert: "SellerdashSigningFallbacks",
							Expr:  `increase(sellerdash_spapi_signing_fallbacks_total[15m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "STS role exchange is falling back to static keys",
								"description": "AssumeRole calls are failing and requests are being signed with static keys instead of session credentials.",
							},
						},
						{
							Alert: "SellerdashThrottleSaturation",
							Expr:  `histogram_quantile(0.95, sum(rate(sellerdash_spapi_throttle_wait_seconds_bucket[5m])) by (le, category)) > 5`,
							For:   "10m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "SP-API rate-limit queue is saturated",
								"description": "Calls in at least one category have been waiting more than 5s (p95) on the rate limiter for 10 minutes.",
							},
						},
						{
							Alert: "SellerdashPanics",
							Expr:  `increase(sellerdash_panics_total[10m]) > 0`,
							For:   "0m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Handler panics recovered",
								"description": "One or more handler panics were recovered in the last 10 minutes. Check the logs for the stack trace.",
							},
						},
						{
							Alert: "SellerdashClientThrottling",
							Expr:  `sellerdash:client_throttled:rate5m > 1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Inbound clients are being throttled",
								"description": "More than 1 request/s is being rejected with 429 by the per-client throttle.",
							},
						},
					},
				},
			},
		},
	}
}
