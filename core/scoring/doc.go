// Package scoring computes static weight scores and dynamic priority
// scores for tasks. Weight reflects importance independent of timing;
// priority blends weight, due-date urgency and predicted effort into a
// single ranking value.
package scoring
