// Package menu contains the Menu aggregate and its supporting types.
//
// A Menu is a named, priced bundle of product line items offered under a
// MenuGroup. The menu owns its MenuProduct line items: they are created with
// the menu and share its lifetime. Menus are immutable after creation; the
// only cross-aggregate rule - declared price must not exceed the summed
// product prices - lives in the domain services layer because it requires
// resolved products.
package menu
