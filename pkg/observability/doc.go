/*
Package observability provides monitoring for the Sluice optimizer.

It turns the optimizer lifecycle hooks into Prometheus metrics (layers
expanded, frontier size, dominance and beam pruning, solve duration and
yield) and structured log records.
*/
package observability
