// Package sanitizer normalizes free-form input before it is validated and
// stored.
//
// All functions are idempotent. Invalid input is never an error here: it is
// passed through (trimmed) and left for the validator to judge.
//
// Normalization includes:
//   - Strings: collapse whitespace, trim leading/trailing spaces
//   - Query text: same as strings, used for the "q" and "category" filters
//   - Emails: trimmed and lowercased
//   - Slices: remove duplicates and empty values after normalization
//   - Phone numbers: E.164 (+[country][number]) when the number is valid
package sanitizer
