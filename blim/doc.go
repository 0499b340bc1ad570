// Package blim implements the Basic Local Independence Model of spec
// §4.5: Bayesian posterior update over a knowledge-state distribution
// given assessment responses, next-item selection by maximum
// discrimination, and Shannon entropy of the posterior.
package blim
