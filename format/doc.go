// SPDX-License-Identifier: MIT

// Package format renders generator output as plain text: algebra and product
// headers, basis product tables, unary tables and per-blade case blocks.
//
// Every line that is not an expression starts with "//", so the output can be
// pasted next to source code. Tables are drawn with ASCII borders.
package format
