/*
Package sluice schedules the release of resources over a network of nodes to
maximize the total yield collected before a deadline.

Each node has a yield rate. One or two agents start at the same node and,
one time unit at a time, either move to a neighboring node or activate the
node they stand on. An activated node releases its yield rate every
remaining unit until the horizon.

# Search

The optimizer runs a breadth-first search in time layers. States that share
positions and activated set are merged by a dominance table that keeps the
highest accumulated yield. Single-agent searches are exact. Two-agent
searches may cap each layer to the best K states (the beam); Result.Exact
reports whether any layer was trimmed.

# Usage

	opt, err := sluice.Load("network.txt")
	if err != nil {
		log.Fatal(err)
	}

	res, err := opt.Solve(ctx, domain.Request{Start: "AA", Horizon: 30})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Best)

Networks may also be built in code with domain.Build and handed to New.
A ports.ResultStore given with WithStore caches results by fingerprint.
*/
package sluice
