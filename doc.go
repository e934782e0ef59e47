// Package galactic maintains a formal context: a set of individuals (the
// population) described by a set of typed attributes (the model).
//
// Every individual holds exactly one value per attribute, and that value is
// always a value of the attribute's type. The package keeps this true
// through every mutation:
//
//  1. Adding an attribute gives every individual the default value of the
//     attribute's type.
//  2. Changing the type of an attribute converts every stored value to the
//     new type; values that cannot be converted are replaced by the default
//     value.
//  3. Removing an attribute removes its value from every individual.
//  4. Adding an individual gives it the default value of every attribute
//     that is not set explicitly.
//
// Typical use is as follows:
//
//  1. Define the attributes and their types
//  2. Create a context, possibly with initial individuals
//  3. Read and write values through individuals or attributes
//  4. Change the model; the population follows
//
// # Types
//
// A type is anything implementing the Type interface. The package provides
// the scalar types Bool, Int, Float and String. The category package
// provides set-valued types (a value is a subset of a finite universe) and
// the interval package provides interval-valued types over numbers.
// Types can also be resolved by name with a Registry, which is how Decode
// reads contexts from YAML.
//
// # Ownership
//
// A context is not safe for concurrent use. Attributes and individuals are
// views bound to their context; an attribute or individual of one context
// is never found in another one, even with the same name.
package galactic
