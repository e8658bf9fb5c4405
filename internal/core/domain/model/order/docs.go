// Package order contains the order aggregate: the Order root, its Item lines,
// the customer snapshot value object, the order number, the two independent
// state machines (Status and PaymentStatus), and the monetary computation
// rules. All money math goes through kernel.Money; totals are always derived
// server-side and never trusted from callers.
package order
