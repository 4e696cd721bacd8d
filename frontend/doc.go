/*
Package frontend contains the data model for the ScoreCraft new score wizard.

The frontend package defines the Model struct, which holds the entire UI state
of the wizard: which step is shown, the score information typed in so far, the
chosen template, the selected instruments and the key signature. None of it
outlives the wizard; cancelling throws everything away.

The views (Gio in frontend/gioui, terminal in frontend/tui) do not modify the
Model data directly, rather, there are types Action, Bool, Int, String and List
which can be used to manipulate the model data in a controlled way. For example,
model.Wizard().Next() returns an Action to move to the next step, which can be
executed with model.Wizard().Next().Do(). Views gray out buttons whose Action
reports Enabled() == false.

The various Actions and other data manipulation methods are grouped based on
their functionalities. For example, model.Info() groups the score information
fields and model.Instruments() groups the instrument picker. The method naming
aims at API fluency, e.g. model.Instruments().Select("Oboe") returns an Action
appending an oboe to the selection.
*/
package frontend
