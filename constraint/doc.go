// Package constraint provides constructs needed to build pseudo-boolean
// feasibility models.
//
// A model is a list of linear constraints over binary variables;
//   - Each constraint compares a LinearExpression of Term to an integer bound
//   - A Term is an association between an integer coefficient and a variable
package constraint
