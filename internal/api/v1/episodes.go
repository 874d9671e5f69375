package v1

import "net/http"

func (s *Server) createEpisode(w http.ResponseWriter, r *http.Request) {
	seriesID, err := pathID(r, "seriesId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req createEpisodeRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	e := req.toCatalog()
	if err := s.store.AddEpisode(seriesID, e); err != nil {
		s.writeStoreError(w, "series", err)
		return
	}
	writeJSON(w, http.StatusCreated, episodeToResponse(e))
}

func (s *Server) updateEpisode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req episodePatchRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	e, err := s.store.UpdateEpisode(id, req.toPatch())
	if err != nil {
		s.writeStoreError(w, "episode", err)
		return
	}
	writeJSON(w, http.StatusOK, episodeToResponse(e))
}

func (s *Server) deleteEpisode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.DeleteEpisode(id); err != nil {
		s.writeStoreError(w, "episode", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Episode deleted"})
}
