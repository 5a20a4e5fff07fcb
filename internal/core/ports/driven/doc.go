// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - BlobStore: Vault file persistence (content and attributes)
//   - Parser: Extracts a flat identifier mapping from one file format
//   - ParserRegistry: Selects the appropriate parser for a format
//   - TableExtractor: Recovers tabular rows from spreadsheet and
//     word-processor containers
//   - TemplateRenderer: Replaces placeholders inside a docx container
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or parser package
package driven
