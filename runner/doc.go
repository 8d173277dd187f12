// Package runner checks ALU test vectors against the reference model.
//
// A Runner consumes a vector source, evaluates each vector with the model,
// compares the result byte and all four flags, and streams an Outcome per
// vector to a Sink. The final Summary is sent to the Sink and returned.
package runner
