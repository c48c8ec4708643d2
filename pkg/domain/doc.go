/*
Package domain contains the core model of the quotes file and the pure
operations on it.

It is free of I/O: reading and writing the file is done by adapters
behind ports.QuoteStore, and JSON handling lives in package codec.

# Key Entities

  - Entry: a [text, key] pair, where key is the author or category.
  - Document: the ordered list of entries stored under "quotes".
  - Selector: picks a quote of the day (day, random, last, pick).
*/
package domain
