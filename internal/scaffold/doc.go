// Package scaffold generates new MCP server projects from embedded
// templates. It powers the "mcplug create" command, substituting the project
// name, derived class name, and a generated local secret into the template
// set.
package scaffold
