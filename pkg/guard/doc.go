// Package guard composes the rbac evaluator with denial policies for
// protected operations and views.
//
// Three flavors cover the application's surfaces:
//
//   - Guard: a stateful, per-surface wrapper for server-rendered UI. It
//     re-evaluates the verdict on every role or check snapshot and resolves
//     denials to exactly one behavior — fallback content, a redirect, or
//     nothing. The redirect fires at most once per allowed-to-denied
//     transition, so a denied view that keeps re-rendering cannot loop.
//
//   - Middleware / RequireAdmin: stateless per-request enforcement at the
//     HTTP boundary. This is the real security boundary; any UI-side guard is
//     advisory UX on top of it.
//
//   - Registry: a startup-time table mapping operation identifiers to routes
//     and policies, mounted onto a chi router. It rejects operations declared
//     with no checks and no role gate unless explicitly marked public,
//     because an empty ALL-composition check list admits everyone.
//
// The admin gate (NewRoleGuard, RequireAdmin) admits exactly one role with no
// catalog lookup; surfaces gated both ways must satisfy both.
package guard
