// Package tui drives a form from the terminal. A Session turns each control
// of the view tree into a prompt and feeds the answers back to the form
// controller as events; the PromptDriver seam lets tests script the answers.
package tui
