// Package ruleset loads declarative YAML rule profiles and turns them into
// configured rulespec specifications.
//
// A profile maps field names to ordered rule bindings:
//
//	fields:
//	  age:
//	    - rule: between
//	      args: [1, 10]
//	      severity: soft
//	      message: age must be between 1 and 10
//	  nickname:
//	    - rule: trim
//	    - rule: max_len
//	      args: [32]
//	      allow_blank: true
//
// Parse and Load fail fast on malformed bindings (missing rule name,
// unknown severity) so configuration mistakes surface at load time. Build
// hands every specification the caller's resolver; rule names themselves
// are still resolved lazily at evaluation time.
package ruleset
