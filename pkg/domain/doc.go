/*
Package domain contains the core domain models for the confgen engine.

It defines the entities that flow between the binder, the collector and the
renderer. This package is kept pure and free of I/O, following the same
hexagonal split as the rest of the module: adapters load and write, the core
only transforms.

# Key Entities

  - TemplateSpec: the loaded schema document (template body, output path, options).
  - OptionDeclaration: one typed, optionally-defaulted option referenced by placeholders.
  - Binding: a placeholder id resolved to its declaration, produced by the binder.
  - ResolvedValue: the typed value collected for a binding.
  - Resolution: the id -> ResolvedValue mapping consumed by the renderer.
*/
package domain
