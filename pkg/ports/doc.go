/*
Package ports defines the driven ports (interfaces) for the confgen engine.

These interfaces decouple the core from the filesystem so the engine can be
fed schemas from memory in tests and write to anything that accepts text.

# Key Interfaces

  - SpecLoader: Responsible for loading the TemplateSpec (e.g., from .confgen.yaml).
  - OutputSink: Responsible for persisting the rendered text.
*/
package ports
