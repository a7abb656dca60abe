/*
Package task implements the small-systems flow analysis step.

The task is the unit a host drives: Init is called once per run, then Process
once per collision. Init builds the pt axis from the step schedule (or from a
verbatim edge list) and a uniform vertex-Z axis, and declares two histograms:

  - hPt: transverse momentum of accepted tracks.
  - hVtxZ: vertex Z of accepted collisions.

Collisions are accepted when |posZ| < vtxZCut; tracks of accepted collisions
when |eta| < etaCut and ptMin < pt < ptMax.

An unusable pt range (ptMin >= ptMax) fails Init with
domain.ErrInvalidAxisBounds rather than producing a one-edge axis.
*/
package task
