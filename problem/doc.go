// SPDX-License-Identifier: MIT

// Package problem reads and writes longpath problem files.
//
// A problem file is YAML (JSON is accepted too, being a YAML subset):
//
//	budget: 1
//	oracle: floyd-warshall   # optional
//	graph:
//	  - [0, 2, 2, 2, -1]
//	  - [9, 0, 2, 2, -1]
//	  - ...
//
// Unknown keys are rejected. Encode writes either YAML or JSON.
package problem
