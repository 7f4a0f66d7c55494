package simulation

const (
	// DAMPING scales velocity each step to bleed energy out of the
	// system and avoid unbounded oscillation.
	DAMPING = 0.9

	// CENTERING_FORCE pulls every node toward the canvas center so
	// disconnected nodes don't drift to the boundary and stay there.
	CENTERING_FORCE = 0.001

	// REPULSION_FORCE scales the inverse-square pairwise repulsion.
	REPULSION_FORCE = 100.

	// REPULSION_CUTOFF is the distance beyond which a pair exerts no
	// repulsion. Bounds the cost of the O(n²) pass.
	REPULSION_CUTOFF = 200.

	// SPRING_LENGTH is the natural rest length of every edge spring.
	SPRING_LENGTH = 150.

	// SPRING_CONSTANT scales the Hooke attraction along edges, before
	// the per-edge strength factor.
	SPRING_CONSTANT = 0.01
)
