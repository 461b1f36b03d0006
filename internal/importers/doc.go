// Package importers turns raw upload bytes into candidate business cards.
//
// # Architecture
//
// Every import follows the same flow:
//
//	bytes → Decoder → []Record → cards.Validate → store insert
//
// A Decoder only parses. It returns a structural error (*cards.StructuralError)
// when the payload as a whole is unusable, and otherwise yields one Record per
// card in input order. Per-field leniency happens here. A photo that is not
// valid base64 is dropped rather than failing the record. Validation and
// persistence are done by services.CardService.
//
// # Decoders
//
//   - CSVDecoder: header line discarded, literal comma split, short rows skipped
//   - XMLDecoder: <BusinessCards><BusinessCard>...</BusinessCard></BusinessCards>
//   - DecodeQRPayload: one JSON object or one CSV-style line from a QR code
//
// # Adding a New Format
//
//  1. Create a new file (e.g., vcard.go) with a type implementing Decoder
//  2. Add a compile-time check: var _ Decoder = (*VCardDecoder)(nil)
//  3. Register the file extension in ForExtension
package importers
