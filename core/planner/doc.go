// Package planner packs scored tasks into bounded time budgets and
// analyzes the resulting workload. Packing is greedy capacity-fit: tasks
// are taken in priority order and a task larger than the remaining budget
// is partially allocated rather than skipped. There is no lookahead or
// repacking, so two tasks that would fit together optimally but not in
// priority order can leave a day under-packed.
package planner
