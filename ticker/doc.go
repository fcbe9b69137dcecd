// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticker chooses tick positions along a numeric axis and
// renders tick values as labels.
//
// A Locator maps a view interval to an ascending slice of tick
// positions. A Formatter maps a single tick value to its label. Some
// formatters can only label a value in the context of all of its
// sibling ticks (for example, to pull out a common offset or decide
// which logarithmic sub-ticks get a label); these also implement
// LocsSetter, and SetLocs must be called with the current view and
// tick positions before Format. Axis wires the two together in that
// order.
//
// Locators are configured through their exported fields or, after
// construction, through SetParams. Neither locators nor formatters
// are safe for concurrent mutation; callers must serialize
// configuration changes and queries on a single axis.
package ticker // import "github.com/aclements/go-ticks/ticker"
