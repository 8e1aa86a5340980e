package vault

import (
	"github.com/google/uuid"
)

// Link manager. The idea/project relationship is bidirectional and kept
// consistent: idea.ProjectID names project P exactly when P's linked set
// contains the idea. Task links are single one-way references that replace
// silently on re-link. Every mutation here goes through SaveAll so the two
// sides can never diverge in the store.

// LinkIdeaToProject links an idea into a project's set. Both must exist.
// Linking an already-linked pair is a no-op. An idea linked to a different
// project moves: the old project's set is scrubbed.
func (v *Vault) LinkIdeaToProject(projectID, ideaID uuid.UUID) error {
	s, err := v.loadAll()
	if err != nil {
		return err
	}
	p, err := findProject(s.projects, projectID)
	if err != nil {
		return err
	}
	i, err := findIdea(s.ideas, ideaID)
	if err != nil {
		return err
	}

	idea := &s.ideas[i]
	if s.projects[p].HasIdea(ideaID) && idea.ProjectID != nil && *idea.ProjectID == projectID {
		return nil
	}

	if idea.ProjectID != nil && *idea.ProjectID != projectID {
		if old, err := findProject(s.projects, *idea.ProjectID); err == nil {
			s.projects[old].RemoveIdea(ideaID)
		}
	}
	s.projects[p].AddIdea(ideaID)
	idea.SetProject(projectID)

	return v.saveAll(s)
}

// UnlinkIdeaFromProject removes an idea from a project's set. The project
// must exist; unlinking a pair that is not linked is a no-op.
func (v *Vault) UnlinkIdeaFromProject(projectID, ideaID uuid.UUID) error {
	s, err := v.loadAll()
	if err != nil {
		return err
	}
	p, err := findProject(s.projects, projectID)
	if err != nil {
		return err
	}
	if !s.projects[p].HasIdea(ideaID) {
		return nil
	}

	s.projects[p].RemoveIdea(ideaID)
	if i, err := findIdea(s.ideas, ideaID); err == nil {
		if s.ideas[i].ProjectID != nil && *s.ideas[i].ProjectID == projectID {
			s.ideas[i].ClearProject()
		}
	}
	return v.saveAll(s)
}

// LinkTaskToProject points a task at a project, replacing any previous
// project reference. Both must exist.
func (v *Vault) LinkTaskToProject(taskID, projectID uuid.UUID) error {
	s, err := v.loadAll()
	if err != nil {
		return err
	}
	t, err := findTask(s.tasks, taskID)
	if err != nil {
		return err
	}
	if _, err := findProject(s.projects, projectID); err != nil {
		return err
	}
	s.tasks[t].SetProject(projectID)
	return v.saveAll(s)
}

// LinkTaskToIdea points a task at an idea, replacing any previous idea
// reference. Both must exist.
func (v *Vault) LinkTaskToIdea(taskID, ideaID uuid.UUID) error {
	s, err := v.loadAll()
	if err != nil {
		return err
	}
	t, err := findTask(s.tasks, taskID)
	if err != nil {
		return err
	}
	if _, err := findIdea(s.ideas, ideaID); err != nil {
		return err
	}
	s.tasks[t].SetIdea(ideaID)
	return v.saveAll(s)
}

// UnlinkTaskFromProject clears a task's project reference. The task must
// exist; clearing an absent reference is a no-op.
func (v *Vault) UnlinkTaskFromProject(taskID uuid.UUID) error {
	tasks, err := v.store.LoadTasks()
	if err != nil {
		return err
	}
	t, err := findTask(tasks, taskID)
	if err != nil {
		return err
	}
	if tasks[t].ProjectID == nil {
		return nil
	}
	tasks[t].ClearProject()
	return v.store.SaveTasks(tasks)
}

// UnlinkTaskFromIdea clears a task's idea reference. The task must exist;
// clearing an absent reference is a no-op.
func (v *Vault) UnlinkTaskFromIdea(taskID uuid.UUID) error {
	tasks, err := v.store.LoadTasks()
	if err != nil {
		return err
	}
	t, err := findTask(tasks, taskID)
	if err != nil {
		return err
	}
	if tasks[t].IdeaID == nil {
		return nil
	}
	tasks[t].ClearIdea()
	return v.store.SaveTasks(tasks)
}
