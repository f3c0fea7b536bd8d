// Package editor drives weighted character-limit fields on a form.
//
// A Controller is created with an explicit list of field descriptors and a
// Page, the rendering collaborator that owns the actual elements. Every input,
// composition-end and paste event recounts the field from scratch:
//
//	text -> segment.Segment -> weight and display count
//	     -> truncate.SplitTokens -> Editor.Render(kept, exceeded)
//	     -> cursor.Track -> caret restored
//
// On submit the controller checks every field. If any field overflows the
// submission is blocked and an inline message is set for each overflowing
// field; otherwise each field's kept text becomes its submission value.
//
//	page := editor.NewMemoryPage()
//	page.AddField("body", "")
//	ctrl, err := editor.New(page, []editor.FieldDescriptor{{ID: "body", MaxWeight: 280}})
//	...
//	ctrl.HandleInput("body", false)
//	outcome, err := ctrl.Submit()
//	if errors.Is(err, editor.ErrOverflow) {
//	    // blocked; messages are on the page
//	}
//
// MemoryPage and MemoryEditor are headless implementations used by tests and
// by server-side replays of form edits.
package editor
