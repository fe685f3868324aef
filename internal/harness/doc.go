// Package harness runs conformance scenarios against the operation catalog.
//
// A scenario is a list of operation invocations with expectations, executed
// with a frozen clock and a seeded random source so that every run produces
// the same trace. Traces are rendered as canonical JSON and can be compared
// against golden files.
//
// # Scenario Format
//
// Scenarios are YAML or CUE files:
//
//	name: number_formatting
//	description: "Abbreviations and rounding"
//	now: "2024-06-01T12:00:00Z"   # optional, default 2024-01-01T00:00:00Z
//	seed: "numbers"               # optional, seeds string.uuid
//	steps:
//	  - op: number.format
//	    args: { value: 1500 }
//	    expect:
//	      value: "1.5K"
//	  - op: number.factorial
//	    args: { n: -1 }
//	    expect:
//	      error: "negative"
//	  - op: string.uuid
//	    expect:
//	      match: "^[0-9a-f-]{36}$"
//	  - op: time.timeAgo
//	    advance: 2h                 # move the clock before this step
//	    args: { date: "2024-06-01T12:00:00Z" }
//	assertions:
//	  - type: trace_count
//	    op: number.format
//	    count: 1
//
// # Expectations
//
//   - value: the result must equal the given value as canonical JSON, so 3
//     and 3.0 compare equal and struct results compare against maps.
//   - error: the step must fail with an error containing the text.
//   - match: the result, as text, must match the regular expression.
//
// A step that fails without an error expectation fails the scenario.
//
// # Assertion Types
//
//   - trace_contains: an invocation of op with matching args (subset) exists
//   - trace_order: the listed ops appear in that order
//   - trace_count: op appears exactly count times
//
// # Usage
//
//	s, err := harness.LoadScenario(afero.NewOsFs(), "testdata/scenarios/numbers.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(s)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
