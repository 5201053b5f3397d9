// Package symbols implements the scope stack used by the type checker.
//
// Variables live in nested scopes: lookups walk from the innermost scope to
// the global one, and a name may be declared once per scope. Methods live in
// a separate flat table and are visible everywhere once registered.
package symbols
