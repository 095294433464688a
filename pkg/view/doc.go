// Package view holds the view hierarchy that constraint directives are
// resolved against.
//
// A [Node] is a view handle with a parent back-pointer, used for the
// common-ancestor check that guards every emitted constraint. An [Index]
// maps view names to nodes for one hierarchy, and an [Environment] supplies
// named objects outside it, such as layout guides. Both satisfy [Resolver].
package view
