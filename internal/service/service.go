// Package service contains the business logic.
//
// It sits between the handler layer and the analysis collaborator.
// It receives validated requests from the handler, runs the matching
// analyzer operation under a deadline and hands the result back.
package service
