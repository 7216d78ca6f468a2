// Package lib holds modules that do not fit strictly into other layers.
//
// It contains the analysis integrations (fixed-response stub, Gemini and
// the Redis result cache) the service layer delegates to.
package lib
