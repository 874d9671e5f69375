package v1

import "net/http"

func (s *Server) listSeries(w http.ResponseWriter, r *http.Request) {
	all, err := s.store.ListSeries()
	if err != nil {
		s.writeStoreError(w, "series", err)
		return
	}

	resp := make([]seriesResponse, len(all))
	for i, sr := range all {
		resp[i] = seriesToResponse(sr)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getSeries(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sr, episodes, err := s.store.GetSeriesWithEpisodes(id)
	if err != nil {
		s.writeStoreError(w, "series", err)
		return
	}
	writeJSON(w, http.StatusOK, seriesToDetailResponse(sr, episodes))
}

func (s *Server) createSeries(w http.ResponseWriter, r *http.Request) {
	var req createSeriesRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sr := req.toCatalog()
	if err := s.store.AddSeries(sr); err != nil {
		s.writeStoreError(w, "series", err)
		return
	}
	writeJSON(w, http.StatusCreated, seriesToResponse(sr))
}

func (s *Server) updateSeries(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req seriesPatchRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sr, err := s.store.UpdateSeries(id, req.toPatch())
	if err != nil {
		s.writeStoreError(w, "series", err)
		return
	}
	writeJSON(w, http.StatusOK, seriesToResponse(sr))
}

func (s *Server) deleteSeries(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.DeleteSeries(id); err != nil {
		s.writeStoreError(w, "series", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Series and associated episodes deleted"})
}
