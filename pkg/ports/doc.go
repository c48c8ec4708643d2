/*
Package ports defines the driven ports (interfaces) of the quotes engine.

# Key Interfaces

  - QuoteStore: loads and saves the quotes document (file or memory).
*/
package ports
