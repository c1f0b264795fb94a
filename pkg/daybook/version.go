// Package daybook carries module-level metadata.
package daybook

// Version is the current release version of the daybook module.
const Version = "0.2.0"
