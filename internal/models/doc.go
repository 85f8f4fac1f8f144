// Package models defines the wire-level data model shared by the admin client,
// the public client, and the terminal dashboard.
//
// Two categories of types live here:
//
// 1. Resource records, mirroring the backend's serialization:
//   - [Kost] : the singleton kost profile managed per kost_id
//   - [Room] : a rentable room, embedding its [Facility] references
//   - [Facility] : a catalog entry linkable to any number of rooms
//   - [Nearby] : a nearby place with a fixed category enum
//   - [Rule] : a house rule
//
// 2. Envelope and coercion types:
//   - [Page] : the {items, total, page, page_size} list envelope
//   - [Flag] : boolean-ish column normalization (true, 1, "1" all mean true)
//
// The backend does not guarantee native booleans for boolean columns, so every
// boolean-ish field goes through [Flag]; the ambiguity stays isolated to that
// one translation point.
package models
