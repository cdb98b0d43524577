// Copyright (C) 2026 Lighthouse SRE (ops@lighthouse-sre.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package services

import (
	"fmt"
	"time"

	"github.com/lighthouse-sre/readiness/services/orchestrator/datatypes"
)

// FallbackSystemAnalysis returns the canned analysis served whenever the
// model path is unavailable or unusable. The content is fixed: tests and
// operators rely on "Frontend Web App" being the first component to detect
// degraded output.
func FallbackSystemAnalysis() *datatypes.SystemAnalysis {
	return &datatypes.SystemAnalysis{
		Components: []datatypes.Component{
			{Name: "Frontend Web App", Type: "ui", Description: "React-based user interface", Technologies: []string{"React", "Material UI"}},
			{Name: "API Gateway", Type: "api", Description: "RESTful API gateway", Technologies: []string{"Express.js", "Node.js"}},
			{Name: "Authentication Service", Type: "service", Description: "User authentication and authorization", Technologies: []string{"OAuth 2.0", "JWT"}},
			{Name: "Product Service", Type: "service", Description: "Core product management", Technologies: []string{"Java", "Spring Boot"}},
			{Name: "Inventory Service", Type: "service", Description: "Inventory tracking and management", Technologies: []string{"Java", "Spring Boot"}},
			{Name: "User Database", Type: "database", Description: "User data storage", Technologies: []string{"PostgreSQL"}},
			{Name: "Product Database", Type: "database", Description: "Product catalog storage", Technologies: []string{"MongoDB"}},
			{Name: "CDN", Type: "external", Description: "Content delivery network", Technologies: []string{"Cloudflare"}},
		},
		Dependencies: []datatypes.Dependency{
			{Source: "Frontend Web App", Target: "API Gateway", Type: "REST"},
			{Source: "API Gateway", Target: "Authentication Service", Type: "REST"},
			{Source: "API Gateway", Target: "Product Service", Type: "REST"},
			{Source: "API Gateway", Target: "Inventory Service", Type: "REST"},
			{Source: "Authentication Service", Target: "User Database", Type: "Database"},
			{Source: "Product Service", Target: "Product Database", Type: "Database"},
			{Source: "Inventory Service", Target: "Product Database", Type: "Database"},
			{Source: "Frontend Web App", Target: "CDN", Type: "External"},
		},
		CriticalPaths: [][]string{
			{"Frontend Web App", "API Gateway", "Authentication Service", "User Database"},
			{"Frontend Web App", "API Gateway", "Product Service", "Product Database"},
		},
		SinglePointsOfFailure: []datatypes.FailurePoint{
			{Name: "API Gateway", Impact: "All services become inaccessible"},
			{Name: "Product Database", Impact: "Product and inventory data unavailable"},
		},
		Recommendations: []string{
			"Implement API Gateway redundancy across multiple availability zones",
			"Set up database replication for Product Database",
			"Add circuit breakers between API Gateway and backend services",
			"Implement frontend caching strategy for product data",
		},
		AvailabilityTier:  datatypes.TierTwo,
		TierJustification: "The system has indirect revenue impact with customer-facing components. Backend service redundancy is limited, and there are identified single points of failure. Recommended availability target: 99.9%.",
	}
}

// StaticChaosPlan returns the fixed chaos testing plan. Plan generation is
// not model-driven today; this is the complete catalog served for every
// system.
func StaticChaosPlan() *datatypes.ChaosTestingPlan {
	return &datatypes.ChaosTestingPlan{
		DependencyAnalysis: datatypes.DependencyAnalysis{
			Summary: "The system has several critical dependencies that warrant chaos testing",
			Dependencies: []datatypes.CriticalDependency{
				{
					Name:        "API Gateway Dependency",
					Description: "All services are accessed through the API Gateway, making it a critical SPOF",
					Impact:      "Failure would render all backend services inaccessible to end users",
				},
				{
					Name:        "Product Database Dependency",
					Description: "Both Product and Inventory services rely on the same database",
					Impact:      "Failure affects multiple services and core functionality",
				},
				{
					Name:        "Authentication Service Dependency",
					Description: "Required for user authentication across all protected endpoints",
					Impact:      "Failure would prevent authenticated operations system-wide",
				},
				{
					Name:        "External CDN Dependency",
					Description: "Frontend static assets delivery depends on external CDN",
					Impact:      "Failure would degrade UI experience but not break core functionality",
				},
			},
		},
		SteadyStateDefinitions: datatypes.SteadyStateDefinitions{
			Summary: "The following steady states define normal system operation for validating chaos experiments",
			States: []datatypes.SteadyState{
				{
					Name:        "API Gateway Response Time",
					Description: "API Gateway responds to health checks within 300ms",
					Metric:      "p95 latency < 300ms",
					Threshold:   "300ms",
				},
				{
					Name:        "Authentication Service Availability",
					Description: "Authentication service correctly validates tokens",
					Metric:      "Success rate > 99.9%",
					Threshold:   "99.9%",
				},
				{
					Name:        "Product Service Functionality",
					Description: "Product service returns valid product data",
					Metric:      "Error rate < 0.1%",
					Threshold:   "0.1%",
				},
				{
					Name:        "Database Query Performance",
					Description: "Database queries complete within acceptable timeframe",
					Metric:      "p95 query time < 100ms",
					Threshold:   "100ms",
				},
				{
					Name:        "End-to-End Transaction",
					Description: "Complete product search to checkout flow succeeds",
					Metric:      "Success rate > 99.5%",
					Threshold:   "99.5%",
				},
			},
		},
		Hypotheses: datatypes.Hypotheses{
			Summary: "Test hypotheses for chaos testing scenarios",
			Items: []datatypes.Hypothesis{
				{
					Description:  "When the API Gateway experiences high latency, the frontend will degrade gracefully with proper timeouts",
					TestApproach: "Inject latency at the API Gateway level and observe frontend behavior",
				},
				{
					Description:  "When the Product Database becomes unavailable, the Product Service will serve cached data",
					TestApproach: "Terminate Product Database connections and validate Product Service response",
				},
				{
					Description:  "When the Authentication Service is under high load, legitimate user sessions remain valid",
					TestApproach: "Generate high CPU load on Authentication Service while monitoring active sessions",
				},
				{
					Description:  "When network connectivity between services is degraded, retry mechanisms will maintain functionality",
					TestApproach: "Introduce packet loss between services and monitor recovery behavior",
				},
			},
		},
		Experiments: datatypes.Experiments{
			Summary: "Prioritized chaos experiments to validate system resilience",
			Items: []datatypes.ChaosExperiment{
				{
					Name:           "API Gateway Latency Injection",
					Description:    "Inject 1000ms latency to API Gateway responses",
					Components:     []string{"API Gateway"},
					ExpectedResult: "Frontend shows loading states and retries failed requests",
					LitmusConfig:   "apiVersion: litmuschaos.io/v1alpha1\nkind: ChaosEngine\nmetadata:\n  name: api-gateway-latency\nspec:\n  appinfo:\n    appns: 'default'\n    applabel: 'app=api-gateway'\n    appkind: 'deployment'\n  chaosServiceAccount: litmus-admin\n  experiments:\n    - name: pod-network-latency\n      spec:\n        components:\n          env:\n            - name: TOTAL_CHAOS_DURATION\n              value: '60'\n            - name: NETWORK_LATENCY\n              value: '1000'",
				},
				{
					Name:           "Product Database Termination",
					Description:    "Terminate Product Database pod for 30 seconds",
					Components:     []string{"Product Database"},
					ExpectedResult: "Product Service serves cached data and automatically reconnects",
					LitmusConfig:   "apiVersion: litmuschaos.io/v1alpha1\nkind: ChaosEngine\nmetadata:\n  name: product-db-termination\nspec:\n  appinfo:\n    appns: 'default'\n    applabel: 'app=product-db'\n    appkind: 'statefulset'\n  chaosServiceAccount: litmus-admin\n  experiments:\n    - name: pod-delete\n      spec:\n        components:\n          env:\n            - name: TOTAL_CHAOS_DURATION\n              value: '30'\n            - name: FORCE\n              value: 'true'",
				},
				{
					Name:           "Authentication Service CPU Stress",
					Description:    "Stress CPU on Authentication Service to 80% for 2 minutes",
					Components:     []string{"Authentication Service"},
					ExpectedResult: "Active sessions remain valid with potential latency increase",
					LitmusConfig:   "apiVersion: litmuschaos.io/v1alpha1\nkind: ChaosEngine\nmetadata:\n  name: auth-service-cpu-hog\nspec:\n  appinfo:\n    appns: 'default'\n    applabel: 'app=auth-service'\n    appkind: 'deployment'\n  chaosServiceAccount: litmus-admin\n  experiments:\n    - name: pod-cpu-hog\n      spec:\n        components:\n          env:\n            - name: TOTAL_CHAOS_DURATION\n              value: '120'\n            - name: CPU_CORES\n              value: '1'\n            - name: CPU_LOAD\n              value: '80'",
				},
				{
					Name:           "Network Partition Test",
					Description:    "Introduce network partition between frontend and backend services",
					Components:     []string{"Frontend Web App", "API Gateway"},
					ExpectedResult: "Frontend shows appropriate error messages and retry options",
					LitmusConfig:   "apiVersion: litmuschaos.io/v1alpha1\nkind: ChaosEngine\nmetadata:\n  name: network-partition\nspec:\n  appinfo:\n    appns: 'default'\n    applabel: 'app=api-gateway'\n    appkind: 'deployment'\n  chaosServiceAccount: litmus-admin\n  experiments:\n    - name: pod-network-loss\n      spec:\n        components:\n          env:\n            - name: TOTAL_CHAOS_DURATION\n              value: '60'\n            - name: NETWORK_INTERFACE\n              value: 'eth0'\n            - name: NETWORK_PACKET_LOSS_PERCENTAGE\n              value: '100'",
				},
			},
		},
		Rumsfeld: datatypes.RumsfeldAnalysis{
			Summary: "Rumsfeld Matrix analysis for known and unknown failure scenarios",
			Matrix: datatypes.RumsfeldMatrix{
				KnownKnowns: []string{
					"API Gateway is a single point of failure",
					"Product Database outage affects multiple services",
					"Authentication failures will impact all authenticated operations",
					"Network issues between frontend and backend will disrupt user experience",
				},
				KnownUnknowns: []string{
					"Behavior under sustained high load over multiple hours",
					"Recovery characteristics after complete region failure",
					"Impact of third-party CDN disruption during peak traffic",
					"Database performance degradation patterns during multi-service high load",
				},
				UnknownUnknowns: []string{
					"Potential for unforeseen cascading failures across seemingly isolated components",
					"Novel failure modes from combinations of component failures",
					"User behavior changes in response to partial system degradation",
					"Emergent properties under extreme conditions",
				},
			},
			Recommendations: []string{
				"Implement canary deployments to detect potential failures early",
				"Add distributed tracing to identify cascading failure patterns",
				"Establish automated game days to explore unknown failure modes",
				"Create more granular circuit breakers between components",
			},
		},
		BlastRadius: datatypes.BlastRadius{
			Summary: "Analysis of the impact scope for each test case",
			Analyses: []datatypes.BlastRadiusAnalysis{
				{
					Test:           "API Gateway Latency Injection",
					DirectImpact:   []string{"All API requests experience increased latency"},
					IndirectImpact: []string{"Potential timeout cascades in dependent services", "User experience degradation"},
					Containment:    "Impact limited to active user sessions, no data loss expected",
				},
				{
					Test:           "Product Database Termination",
					DirectImpact:   []string{"Product and Inventory services lose database connectivity"},
					IndirectImpact: []string{"API calls for product data return cached/stale data or errors"},
					Containment:    "Impact limited to product-related operations, authentication still functions",
				},
				{
					Test:           "Authentication Service CPU Stress",
					DirectImpact:   []string{"Increased latency for authentication operations"},
					IndirectImpact: []string{"Potential failure of new login attempts"},
					Containment:    "Existing sessions should remain valid, impact limited to authentication operations",
				},
				{
					Test:           "Network Partition Test",
					DirectImpact:   []string{"Frontend cannot communicate with backend services"},
					IndirectImpact: []string{"All user operations fail at frontend"},
					Containment:    "Backend services continue processing queued operations, no data loss expected",
				},
			},
		},
	}
}

// StaticPRRDocument composes the production readiness review document. The
// seven sections are fixed; the title and overview are personalized from the
// project metadata, and the date comes from the injected clock.
func StaticPRRDocument(metadata datatypes.ProjectMetadata, now time.Time) datatypes.PRRDocument {
	return datatypes.PRRDocument{
		Title:   metadata.Name + " - Production Readiness Review",
		Version: "1.0",
		Date:    now.Format("2006-01-02"),
		Sections: []datatypes.PRRSection{
			{
				Title:   "Service Overview",
				Content: fmt.Sprintf("%s is a %s impact service that provides product and inventory management capabilities. The service is designed for a retail environment and handles core e-commerce functionality including product catalog management, inventory tracking, and user authentication.\n\nBased on the business requirements and technical analysis, this service has been classified as a Tier 2 system with a target availability of 99.9%%.", metadata.Name, metadata.BusinessImpact),
			},
			{
				Title:   "Architecture Analysis",
				Content: "The system consists of the following key components:\n\n- Frontend Web App: React-based user interface\n- API Gateway: Central entry point for all service requests\n- Authentication Service: Handles user authentication and authorization\n- Product Service: Core product management functionality\n- Inventory Service: Tracks and manages inventory levels\n- User Database: PostgreSQL database for user data\n- Product Database: MongoDB database for product catalog\n\nCritical paths have been identified between the Frontend and backend services, with all traffic routing through the API Gateway. Single points of failure have been identified in the API Gateway and Product Database.",
			},
			{
				Title:   "Resilience Testing Strategy",
				Content: "A comprehensive destructive testing plan has been developed to validate system resilience. Key test scenarios include:\n\n1. API Gateway Latency Injection: Testing frontend resilience to backend latency\n2. Product Database Termination: Validating cache effectiveness and recovery\n3. Authentication Service CPU Stress: Ensuring session stability under load\n4. Network Partition Testing: Verifying graceful degradation under connectivity issues\n\nEach test has been defined with Litmus Chaos configurations, expected outcomes, and detailed blast radius analysis. The testing approach covers both direct dependencies and potential cascading failures.",
			},
			{
				Title:   "Availability Design",
				Content: "The system has been classified as Tier 2 (High) with a target availability of 99.9%, allowing for approximately 8.76 hours of downtime per year.\n\nKey factors in this classification:\n- Indirect revenue impact through customer-facing components\n- Critical dependency on shared Product Database\n- API Gateway as a single point of failure\n- Limited redundancy in certain components\n\nAvailability improvement recommendations:\n- Implement redundant API Gateway instances across availability zones\n- Configure database replication for the Product Database\n- Add circuit breakers between API Gateway and backend services\n- Implement frontend caching for product data",
			},
			{
				Title:   "Observability Strategy",
				Content: "The following observability implementation is recommended:\n\n- Implement OpenTelemetry instrumentation for all services with the agent and SDK approach\n- Deploy collectors in a hub and spoke model\n- Define SLOs based on the identified steady-state metrics:\n  * API Gateway Response Time: p95 < 300ms\n  * Authentication Service Success Rate: > 99.9%\n  * Product Service Error Rate: < 0.1%\n  * End-to-End Transaction Success: > 99.5%\n\nDashboards should be created to track these metrics with appropriate alerting thresholds.",
			},
			{
				Title:   "Identified Risks & Mitigations",
				Content: "Key risks identified through system analysis and destructive testing:\n\n1. API Gateway as SPOF\n   - Mitigation: Deploy redundant instances across zones\n   - Mitigation: Implement circuit breakers to prevent cascading failures\n\n2. Product Database shared dependency\n   - Mitigation: Implement read replicas for high availability\n   - Mitigation: Develop caching strategy at service level\n\n3. Limited resilience testing for \"Known Unknowns\"\n   - Mitigation: Schedule regular game days to explore edge cases\n   - Mitigation: Implement canary deployments for early detection\n\n4. Potential cascading failures\n   - Mitigation: Add bulkheads between components\n   - Mitigation: Implement retry mechanisms with exponential backoff",
			},
			{
				Title:   "Recommendations & Next Steps",
				Content: "Based on the complete analysis, the following recommendations are prioritized:\n\n1. Address single points of failure in API Gateway and Product Database\n2. Implement the defined Chaos Testing plan to validate resilience\n3. Deploy comprehensive OpenTelemetry instrumentation for observability\n4. Establish SLOs and configure appropriate alerting\n5. Develop runbooks for identified failure scenarios\n6. Schedule quarterly resilience testing and game days\n\nThe system should undergo a follow-up review after implementing these recommendations to validate improvements.",
			},
		},
	}
}
